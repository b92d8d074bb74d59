package main

import "github.com/pfrederiksen/syllabus-exams/internal/cli"

func main() {
	cli.Execute()
}
