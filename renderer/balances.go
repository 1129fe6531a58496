package renderer

// Balances renders the report of a group to a markdown string.
func Balances(r *Report) string {
	partials := map[string]string{
		"balances_title":      "balances_title.md",
		"balances_statements": "balances_statements.md",
		"balances_positions":  "balances_positions.md",
		"balances_settlement": "",
	}
	if len(r.Settlement) > 0 {
		partials["balances_settlement"] = "balances_settlement.md"
	}
	return renderTemplate("balances", "balances.md", partials, r)
}
