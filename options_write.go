package id3tag

// CommitOption configures behavior when committing tags to disk.
//
// Example:
//
//	_, err := tag.Commit(
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithValidation(),
//	)
type CommitOption func(*commitOptions)

// commitOptions holds configuration for committing tags.
type commitOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultCommitOptions returns the default configuration for committing.
func defaultCommitOptions() *commitOptions {
	return &commitOptions{}
}

// WithBackup copies the original file before committing.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "song.mp3.bak"
// before modifying "song.mp3".
//
// If the backup file already exists, it will be overwritten.
func WithBackup(suffix string) CommitOption {
	return func(o *commitOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and compares the title,
// artist and album with the in-memory tag.
//
// Use this for critical operations where data integrity is paramount.
func WithValidation() CommitOption {
	return func(o *commitOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// Use this when updating tags shouldn't change the "modified" date, for
// example to keep a music library sorted by import date.
func WithPreserveModTime() CommitOption {
	return func(o *commitOptions) {
		o.preserveModTime = true
	}
}
