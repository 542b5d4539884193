package checklist

import (
	"path/filepath"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// UpdateFile runs one read-modify-write cycle for a changed path. I/O
// errors are reported in the returned RunFile, never raised.
func UpdateFile(docPath string, level domain.ResourceLevel, changedPath, timestamp string) domain.RunFile {
	result := domain.RunFile{Path: changedPath, Name: filepath.Base(changedPath)}

	content, err := ReadDocument(docPath)
	if err != nil {
		result.Mutation = domain.MutationFailed
		result.Error = err.Error()
		return result
	}

	updated, mutation := Apply(content, level, result.Name, timestamp)
	if !mutation.Applied() {
		result.Mutation = mutation
		return result
	}

	if err := WriteDocument(docPath, updated); err != nil {
		result.Mutation = domain.MutationFailed
		result.Error = err.Error()
		return result
	}
	result.Mutation = mutation
	return result
}

// RecordProgress appends a record block to the document on disk.
func RecordProgress(docPath, timestamp string) (domain.ProgressSnapshot, error) {
	content, err := ReadDocument(docPath)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	updated, snapshot := AppendRecord(content, timestamp)
	if err := WriteDocument(docPath, updated); err != nil {
		return domain.ProgressSnapshot{}, err
	}
	return snapshot, nil
}

// Snapshot reads the document and calculates its progress.
func Snapshot(docPath string) (domain.ProgressSnapshot, error) {
	content, err := ReadDocument(docPath)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	return Calculate(content), nil
}
