package scheduler

// ExampleDataset returns the ten-employee demonstration roster and preferences
func ExampleDataset() ([]string, RawPreferences) {
	employees := []string{
		"Alice", "Bob", "Charlie", "Diana", "Evan",
		"Farah", "Grace", "Henry", "Iris", "Jamal",
	}

	prefs := RawPreferences{
		"Alice":   {Mon: {"morning", "afternoon"}, Tue: {"morning"}, Wed: {"morning"}, Thu: {"morning"}, Fri: {"morning"}},
		"Bob":     {Mon: {"evening"}, Tue: {"evening", "afternoon"}, Wed: {"evening"}, Thu: {"evening"}, Fri: {"evening"}},
		"Charlie": {Mon: {"afternoon"}, Tue: {"afternoon"}, Wed: {"afternoon"}, Thu: {"afternoon"}, Fri: {"afternoon"}},
		"Diana":   {Mon: {"morning"}, Tue: {"morning"}, Wed: {"evening"}, Sat: {"morning", "evening"}},
		"Evan":    {Tue: {"morning"}, Wed: {"morning"}, Thu: {"evening"}, Sun: {"morning"}},
		"Farah":   {Mon: {"evening"}, Wed: {"morning", "evening"}, Fri: {"afternoon"}, Sun: {"evening"}},
		"Grace":   {Thu: {"morning", "afternoon"}, Fri: {"morning"}, Sat: {"afternoon"}},
		"Henry":   {Mon: {"afternoon"}, Tue: {"morning", "afternoon"}, Sat: {"evening"}},
		"Iris":    {Wed: {"evening"}, Thu: {"evening"}, Fri: {"evening"}},
		"Jamal":   {Tue: {"afternoon"}, Thu: {"morning"}, Sun: {"afternoon", "morning"}},
	}

	return employees, prefs
}

// ExampleConfig returns the configuration used with ExampleDataset
func ExampleConfig() Config {
	return Config{
		MinPerShift:        2,
		MaxPerShift:        4,
		MaxDaysPerEmployee: 5,
		RandomSeed:         7,
	}
}
