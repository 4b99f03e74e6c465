package tt

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

type fileSnapshot struct {
	Entries []Entry
}

// SaveToFile gob-encodes a snapshot of the table to path.
func (t *Table) SaveToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	snapshot := fileSnapshot{Entries: t.SnapshotEntries()}
	return gob.NewEncoder(file).Encode(&snapshot)
}

// LoadFromFile re-populates t from a prior SaveToFile dump, as roots keyed
// against z. A missing file is not an error; a truncated one is discarded
// rather than failing the caller, matching the teacher's tolerance for a
// corrupt persistence file.
func (t *Table) LoadFromFile(path string, z *boardpos.Table) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var snapshot fileSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			file.Close()
			os.Remove(path)
			return nil
		}
		return err
	}
	t.LoadEntries(snapshot.Entries, z)
	return nil
}
