package ledger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bobmcallan/ledger/internal/money"
)

// AccountSnapshot is the read-only view of one account emitted at the end
// of a CSV run or on a GET request to the server front.
type AccountSnapshot struct {
	Client    uint16         `json:"client"`
	Available money.Monetary `json:"available"`
	Held      money.Monetary `json:"held"`
	Total     money.Monetary `json:"total"`
	Locked    bool           `json:"locked"`
}

// WriteSnapshot renders snapshots as the CSV-shaped table specified for
// stdout and the HTTP GET body: a header row, then one row per account with
// amounts fixed to four fractional digits.
func WriteSnapshot(w io.Writer, snapshots []AccountSnapshot) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "client, available, held, total, locked"); err != nil {
		return err
	}
	for _, s := range snapshots {
		_, err := fmt.Fprintf(bw, "%d, %s, %s, %s, %t\n",
			s.Client,
			money.FormatFixed(s.Available),
			money.FormatFixed(s.Held),
			money.FormatFixed(s.Total),
			s.Locked,
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
