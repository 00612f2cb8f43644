package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reddwarf405/TommysAdventure/internal/domain"

	"github.com/klauspost/compress/zstd"
)

const (
	MagicHeader string = `TARP` // 4 байта
	Version1    uint32 = 1

	// FileExt - расширение файлов реплея.
	FileExt = ".tarp"
)

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	Depth        int32   // 4 байта
	ActionCount  int32   // 4 байта
	SessionIDLen uint16  // 2 байта, за заголовком идет сам ID
}

// ActionHeader — заголовок каждой записи действия. За ним идет payload.
type ActionHeader struct {
	Tick       int32  // 4
	ActionType uint8  // 1
	PayloadLen uint16 // 2
	Token      uint64 // 8
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir %s: %w", dir, err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет реплей в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%s_d%d_%d%s", session.SessionID, session.Depth, session.Timestamp, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create replay %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteReplay(f, session); err != nil {
		return "", fmt.Errorf("write replay %s: %w", path, err)
	}
	return path, nil
}

// WriteReplay пишет сжатый zstd реплей в w.
func WriteReplay(w io.Writer, session *domain.ReplaySession) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := writeBinary(enc, session); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	idBytes := []byte(s.SessionID)
	if len(idBytes) > 65535 {
		return fmt.Errorf("session id too long: %d", len(idBytes))
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:      Version1,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		Depth:        int32(s.Depth),
		ActionCount:  int32(len(s.Actions)),
		SessionIDLen: uint16(len(idBytes)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(idBytes); err != nil {
		return fmt.Errorf("failed to write session id: %w", err)
	}

	// 2. Пишем действия
	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
			Token:      uint64(act.Token),
		}

		// Пишем заголовок действия одной командой
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
