package main

import "github.com/vadiminshakov/factorial/math"

func main() {
	math.Drive(1, 100)
}
