// @title           NetworkNode API
// @version         1.0
// @description     Каталог участников сообщества, вакансии, стартапы и запросы на встречу.
// @host            localhost:8080
// @BasePath        /

package main

import "networknode/internal/app"

func main() {
	app.Run()
}
