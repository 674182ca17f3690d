package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mkhatri/moneyman/internal/aggregate"
	"github.com/mkhatri/moneyman/internal/models"
)

// formatMoney renders a decimal magnitude in the configured currency.
func formatMoney(app *appContext, d decimal.Decimal) string {
	code := strings.ToUpper(app.cfg.Currency)
	currency := money.GetCurrency(code)
	minor := d.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

func renderTransactions(app *appContext, txs []models.Transaction) {
	if len(txs) == 0 {
		fmt.Println("no transactions")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tTITLE\tPERSON\tID")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date.UTC().Format(dateFormat),
			tx.Type,
			formatMoney(app, tx.Amount),
			tx.Title,
			tx.Person,
			tx.ID,
		)
	}
	w.Flush()
}

func renderPersons(persons []models.Person) {
	if len(persons) == 0 {
		fmt.Println("no people tracked")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID")
	for _, p := range persons {
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.ID)
	}
	w.Flush()
}

func renderTotals(app *appContext, totals aggregate.Totals) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\n", formatMoney(app, totals.Income))
	fmt.Fprintf(w, "Expense\t%s\n", formatMoney(app, totals.Expense))
	fmt.Fprintf(w, "Lent\t%s\n", formatMoney(app, totals.Lend))
	fmt.Fprintf(w, "Borrowed\t%s\n", formatMoney(app, totals.Borrow))
	if !totals.Adjustment.IsZero() {
		fmt.Fprintf(w, "Adjustment\t%s\n", formatMoney(app, totals.Adjustment))
	}
	w.Flush()
}

func renderBuckets(app *appContext, buckets []aggregate.Bucket) {
	if len(buckets) == 0 {
		fmt.Println("no transactions")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tINCOME\tEXPENSE\tNET")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			b.Key,
			formatMoney(app, b.Income),
			formatMoney(app, b.Expense),
			formatMoney(app, b.Net),
		)
	}
	w.Flush()
}

func renderBalances(app *appContext, balances map[string]*aggregate.PersonSummary) {
	if len(balances) == 0 {
		fmt.Println("no people tracked")
		return
	}

	// Largest absolute balance first, the most interesting debts on top.
	sorted := make([]*aggregate.PersonSummary, 0, len(balances))
	for _, s := range balances {
		sorted = append(sorted, s)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Balance.Abs().GreaterThan(sorted[j].Balance.Abs())
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBALANCE\tSTATUS\tTXNS")
	for _, s := range sorted {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			s.Name,
			formatMoney(app, s.Balance),
			balanceStatus(s.Balance),
			len(s.Items),
		)
	}
	w.Flush()
}

func balanceStatus(balance decimal.Decimal) string {
	switch {
	case balance.IsPositive():
		return "they owe you"
	case balance.IsNegative():
		return "you owe them"
	default:
		return "settled"
	}
}
