package interfaces

// FileProcessor rewrites a single file in place.
type FileProcessor interface {
	Process(path string) error
}
