package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-htmx-todo/internal/database"
	"go-htmx-todo/internal/routes"
)

func main() {
	// .envがなくても環境変数から読み取れるため、エラーは警告に留める
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Fatal: Failed to migrate database: %v", err)
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// サーバー起動
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
