package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"lookbook/internal/infra"
	"lookbook/internal/store"
)

func main() {
	var (
		countFlag  int
		quotaFlag  int
		prefixFlag string
	)

	flag.IntVar(&countFlag, "count", 5, "number of tokens to mint")
	flag.IntVar(&quotaFlag, "quota", 10, "initial quota per token")
	flag.StringVar(&prefixFlag, "prefix", "LOOK-2026", "token key prefix")
	flag.Parse()

	if countFlag <= 0 {
		exitWithError(errors.New("-count must be positive"))
	}
	if quotaFlag <= 0 {
		exitWithError(errors.New("-quota must be positive"))
	}
	prefix := strings.TrimSpace(prefixFlag)
	if prefix == "" {
		exitWithError(errors.New("-prefix is required"))
	}

	_ = godotenv.Load()
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "tokengen").Logger()
	tokens := store.NewTokenStore(infra.NewSQLRunner(pool, logger))

	if err := tokens.EnsureSchema(ctx); err != nil {
		exitWithError(fmt.Errorf("failed to ensure schema: %w", err))
	}

	for i := 0; i < countFlag; i++ {
		key, err := mintKey(prefix)
		if err != nil {
			exitWithError(fmt.Errorf("failed to generate key: %w", err))
		}
		if _, err := tokens.Create(ctx, key, quotaFlag); err != nil {
			exitWithError(fmt.Errorf("failed to store token %s: %w", key, err))
		}
		fmt.Printf("%s\tquota=%d\n", key, quotaFlag)
	}
}

func mintKey(prefix string) (string, error) {
	raw := make([]byte, 4)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex.EncodeToString(raw))), nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
