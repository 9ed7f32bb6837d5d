package ports

// ObsidianOpener defines the interface for opening entries in Obsidian
type ObsidianOpener interface {
	// OpenFile opens the specified file in Obsidian using the obsidian:// URI scheme.
	// The filePath should be an absolute path to a file within the journal
	OpenFile(filePath string) error
}
