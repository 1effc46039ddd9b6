package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
)

// Writer appends finished game records to a zstd-compressed
// JSON-lines file for audit.
type Writer struct {
	lock    sync.Mutex
	file    *os.File
	encoder *zstd.Encoder
}

func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %v", err)
	}

	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}

	return &Writer{
		file:    file,
		encoder: encoder,
	}, nil
}

// Append writes one game record to the archive and flushes so the
// record survives a crash.
func (w *Writer) Append(game *gametypes.Game) error {
	b, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %v", err)
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if _, err := w.encoder.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write game to archive: %v", err)
	}
	if err := w.encoder.Flush(); err != nil {
		return fmt.Errorf("failed to flush archive: %v", err)
	}

	return nil
}

func (w *Writer) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if err := w.encoder.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return w.file.Close()
}

// Read returns all game records in the archive at path.
func Read(path string) ([]*gametypes.Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %v", err)
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer decoder.Close()

	var games []*gametypes.Game
	scanner := bufio.NewScanner(decoder)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		game := &gametypes.Game{}
		if err := json.Unmarshal(line, game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %v", err)
		}
		games = append(games, game)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive: %v", err)
	}

	return games, nil
}
