package main

import "employeerecords/internal/app/server"

func main() {
	server.Run()
}
