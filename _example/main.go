package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/doubleint"
	"github.com/hupe1980/doubleint/codec"
	"github.com/hupe1980/doubleint/schema"
)

type config struct {
	Name      string              `toml:"name"`
	BatchSize doubleint.DoubleInt `toml:"batch_size"`
}

func main() {
	fmt.Println("--- Construct ---")

	count, err := doubleint.New(9007199254740992)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("count:", count)
	fmt.Printf("as double: %.0f\n", count.Float64())

	if _, err := doubleint.New(count.Int64() + 1); err != nil {
		fmt.Println("rejected:", err)
	}

	fmt.Println("\n--- Config ---")

	var cfg config
	if err := toml.Unmarshal([]byte("name = \"ingest\"\nbatch_size = 1024\n"), &cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("config: %s, batch size %d\n", cfg.Name, cfg.BatchSize.Int64())

	if err := toml.Unmarshal([]byte("batch_size = 36028797018963968\n"), &cfg); err != nil {
		fmt.Println("rejected:", err)
	}

	fmt.Println("\n--- Audit ---")

	var doc map[string]any
	payload := []byte(`{"title":"report","items":[{"count":42},{"count":36028797018963968}]}`)
	if err := json.Unmarshal(payload, &doc); err != nil {
		log.Fatal(err)
	}

	// The untyped decode accepted the document; the audit catches the
	// value that would not survive a double.
	if err := schema.Check(doc); err != nil {
		fmt.Println("audit:", err)
	}

	fmt.Println("\n--- Re-encode ---")

	safe := map[string]any{
		"title": "report",
		"items": []any{map[string]any{"count": count}},
	}
	if err := schema.Check(safe); err != nil {
		log.Fatal(err)
	}

	out, err := codec.Default.Marshal(safe)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s (%s)\n", out, codec.Default.Name())
}
