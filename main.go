package main

import "github.com/SundayYogurt/jobboard_service/cmd"

func main() {
	cmd.Execute()
}
