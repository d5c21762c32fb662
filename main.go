/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/krishvsoni/suno/cmd"

// @title           Suno API
// @version         1.0.0
// @description     Music search and play proxy over a catalog search API and YouTube
// @contact.name    API Support
// @contact.url     https://github.com/krishvsoni/suno
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
