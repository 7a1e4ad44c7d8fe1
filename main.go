package main

import "github.com/killallgit/search-api/cmd"

// @title           Search API
// @version         1.0.0
// @description     Greeting, Wikipedia URL lookup and YouTube video search over public search providers
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/search-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
