package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tauhid-476/anime-tw/internal/characters"
	"github.com/tauhid-476/anime-tw/internal/llm/gemini"
	"github.com/tauhid-476/anime-tw/internal/profile"
	"github.com/tauhid-476/anime-tw/server"
)

const profileTTL = 15 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	geminiApiKey := os.Getenv("GEMINI_API_KEY")
	if geminiApiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	bearerToken := os.Getenv("TWITTER_BEARER_TOKEN")
	if bearerToken == "" {
		log.Fatal("TWITTER_BEARER_TOKEN is not set")
	}

	roaster, err := gemini.NewProvider(context.Background(), geminiApiKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini provider: %v", err)
	}

	fetcher := profile.NewFetcher(profile.NewClient(bearerToken), profileTTL)
	search := characters.NewClient()

	s := server.NewServer(fetcher, roaster, search)

	port := os.Getenv("PORT")
	if port == "" {
		port = "1323"
	}
	log.Fatal(s.Start(":" + port))
}
