package provider

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word   string
	Senses []SenseResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	PartOfSpeech string
	Definition   string
	Example      string
}
