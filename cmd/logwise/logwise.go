package main

import "github.com/logwise-app/logwise/internal/app"

func main() {
	app.Run()
}
