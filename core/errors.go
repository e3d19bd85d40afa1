package core

import (
	"errors"

	"github.com/ionut-t/richedit/internal/logger"
)

var (
	ErrSurfaceUnavailable  = errors.New("surface unavailable")
	ErrUnsupportedCommand  = errors.New("unsupported command")
	ErrUnsupportedValue    = errors.New("unsupported command value")
	ErrInvalidHeadingLevel = errors.New("invalid heading level")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrUnknownFormat       = errors.New("unknown format")
	ErrUnknownAlignment    = errors.New("unknown alignment")
)

type ErrorId int

const (
	ErrSurfaceUnavailableId ErrorId = iota
	ErrCommandFailedId
	ErrInvalidHeadingLevelId
	ErrUnknownFormatId
	ErrUnknownAlignmentId
)

type Error struct {
	id  ErrorId
	err error
}

func (e *editor) DispatchError(id ErrorId, err error) {
	logger.Warnf("Editor: %v", err)

	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		logger.Debugf("Editor: signal channel is full, dropping error signal")
	}
}
