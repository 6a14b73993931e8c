// Command snapshot-inspect dumps the on-disk feed snapshot cache as a
// table. Only useful when the server runs with CACHE_FILEPATH set; the
// default in-memory cache leaves nothing behind to inspect.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"member-qa/domain/qa"
)

func main() {
	dbPath := flag.String("db", "", "Path to the badger snapshot cache")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db flag")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "User", "Timestamp", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("feed:snapshot"))
		if err != nil {
			return err
		}
		if expiry := item.ExpiresAt(); expiry > 0 {
			fmt.Printf("Snapshot expires at %s\n", time.Unix(int64(expiry), 0).UTC().Format(time.RFC3339))
		}
		return item.Value(func(v []byte) error {
			var messages []qa.Message
			if err := json.Unmarshal(v, &messages); err != nil {
				return fmt.Errorf("snapshot value is not readable: %w", err)
			}
			for _, m := range messages {
				text := m.Text
				if len(text) > 80 {
					text = text[:80] + "…"
				}
				table.Append([]string{m.ID, m.UserName, m.Raw, text})
			}
			return nil
		})
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	// BypassLockGuard allows opening while the server holds the lock.
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
