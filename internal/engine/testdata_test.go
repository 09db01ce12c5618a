package engine

// scenarioTable is the three-row table used across the engine tests.
func scenarioTable() *Table {
	return NewTable([]Record{
		{Name: "Wii Sports", Platform: "Wii", Year: 2008, Genre: "Sports", Publisher: "Nintendo", Sales: 10.0},
		{Name: "Mario Kart Wii", Platform: "Wii", Year: 2009, Genre: "Racing", Publisher: "Nintendo", Sales: 5.0},
		{Name: "FIFA 08", Platform: "PS2", Year: 2008, Genre: "Sports", Publisher: "EA", Sales: 3.0},
	})
}

func salesTable() *Table {
	return NewTable([]Record{
		{Name: "A", Platform: "Wii", Year: 2008, Genre: "Sports", Publisher: "Nintendo", Sales: 1.0},
		{Name: "B", Platform: "Wii", Year: 2010, Genre: "Sports", Publisher: "Nintendo", Sales: 2.0},
		{Name: "C", Platform: "PS2", Year: 2008, Genre: "Racing", Publisher: "EA", Sales: 2.0},
		{Name: "D", Platform: "DS", Year: 2009, Genre: "Puzzle", Publisher: "Nintendo", Sales: 0.5},
		{Name: "E", Platform: "Wii", Year: 2009, Genre: "Racing", Publisher: "Nintendo", Sales: 2.0},
		{Name: "F", Platform: "PS2", Year: 2010, Genre: "Sports", Publisher: "EA", Sales: 4.0},
		{Name: "G", Platform: "DS", Year: 2010, Genre: "Sports", Publisher: "Sega", Sales: 0.25},
	})
}

func everything(t *Table) Criteria {
	f := t.Facets()
	return Criteria{
		YearMin:   f.YearMin,
		YearMax:   f.YearMax,
		Platforms: Select(f.Platforms...),
		Genres:    Select(f.Genres...),
	}
}
