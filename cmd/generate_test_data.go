package main

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Development helper: creates ./users.db with generated rows so the search
// UI has something to query. The serving process itself never creates or
// migrates the table.
func main() {
	db, err := sql.Open("sqlite3", "file:./users.db")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		registration_date TEXT,
		nickname TEXT,
		birth_date TEXT,
		token TEXT
	)`)
	if err != nil {
		log.Fatal(err)
	}

	stmt, err := db.PrepareContext(ctx, `
          INSERT INTO users (registration_date, nickname, birth_date, token)
          VALUES (?, ?, ?, ?)
      `)
	if err != nil {
		log.Fatal(err)
	}
	defer stmt.Close()

	nicknames := []string{"falcon", "maple", "orbit", "pixel", "ember",
		"willow", "comet", "drift"}

	fmt.Println("Generating 10,000 test records...")

	now := time.Now()
	for i := 1; i <= 10000; i++ {
		nickname := fmt.Sprintf("%s%d", nicknames[rand.Intn(len(nicknames))], rand.Intn(10000))
		registrationDate := now.AddDate(0, 0, -rand.Intn(730)).Format("2006-01-02")
		birthDate := now.AddDate(-(18 + rand.Intn(62)), 0, -rand.Intn(365)).Format("2006-01-02")

		tokenBytes := make([]byte, 16)
		rand.Read(tokenBytes)
		token := hex.EncodeToString(tokenBytes)

		_, err := stmt.ExecContext(ctx, registrationDate, nickname, birthDate, token)
		if err != nil {
			log.Printf("Error inserting record %d: %v", i, err)
		}

		if i%1000 == 0 {
			fmt.Printf("Generated %d records...\n", i)
		}
	}

	fmt.Println("Test data generation completed!")
}
