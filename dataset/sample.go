package dataset

// Sample returns the built-in payment method distribution used when the
// host supplies no data.
func Sample() []Record {
	rows := []struct {
		name   string
		volume float64
	}{
		{"Card payments", 145000},
		{"Bank transfers", 89000},
		{"Digital wallets", 67000},
		{"Direct debit", 34000},
		{"Cash", 12000},
		{"Cheques", 3000},
	}

	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, Record{Fields: []Field{
			{Key: NameField, Value: r.name},
			{Key: "volume", Value: r.volume},
		}})
	}
	return records
}
