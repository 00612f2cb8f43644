package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reddwarf405/TommysAdventure/internal/domain"

	"github.com/klauspost/compress/zstd"
)

// maxPreallocActions ограничивает начальную емкость: ActionCount приходит из файла.
const maxPreallocActions = 4096

var (
	ErrInvalidMagic       = errors.New("invalid replay magic")
	ErrUnsupportedVersion = errors.New("unsupported replay version")
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	defer f.Close()

	return ReadReplay(f)
}

// ReadReplay читает сжатый реплей из r.
func ReadReplay(r io.Reader) (*domain.ReplaySession, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	return readBinary(dec)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("negative action count: %d", header.ActionCount)
	}

	idBuf := make([]byte, header.SessionIDLen)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return nil, fmt.Errorf("failed to read session id: %w", err)
	}

	session := &domain.ReplaySession{
		SessionID: string(idBuf),
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Depth:     int(header.Depth),
		Actions:   make([]domain.ReplayAction, 0, min(int(header.ActionCount), maxPreallocActions)),
	}

	// 2. Читаем Actions
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("failed to read action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Tick:   int(ah.Tick),
			Token:  domain.EntityID(ah.Token),
			Action: domain.ActionType(ah.ActionType),
		}
		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("failed to read payload %d: %w", i, err)
			}
		}

		session.Actions = append(session.Actions, act)
	}

	return session, nil
}
