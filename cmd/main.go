package main

import (
    "os"

    "backend/config"
    "backend/routes"
)

func main() {
    config.InitDB()
    r := routes.SetupRouter()

    port := os.Getenv("PORT")
    if port == "" {
        port = "3000"
    }
    r.Run(":" + port)
}
