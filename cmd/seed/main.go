package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tweetr-app/tweetr/config"
	"github.com/tweetr-app/tweetr/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	cipher, err := helpers.NewSecretCipher(cfg.CipherSecret, cfg.CipherSalt)
	if err != nil {
		log.Fatalf("failed to init cipher: %v", err)
	}
	encrypted, err := cipher.Encrypt("password1")
	if err != nil {
		log.Fatalf("failed to encrypt password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (email, first_name, last_name, birth_date, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "demo@tweetr.dev", "Demo", "User", nil, encrypted).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=demo@tweetr.dev password=password1\n", userID)

	for _, content := range []string{"hello world", "second tweet from the seeder"} {
		var tweetID int64
		err = db.QueryRow(`
			INSERT INTO tweets (content, created_at, updated_at, user_id)
			VALUES ($1, $2, NULL, $3)
			RETURNING id
		`, content, time.Now().UTC(), userID).Scan(&tweetID)
		if err != nil {
			log.Fatalf("failed to seed tweet: %v", err)
		}
		fmt.Printf("seeded tweet: id=%d content=%q\n", tweetID, content)
	}
}
