package core

import "github.com/ionut-t/richedit/internal/logger"

type Signal any

// ContentChangedSignal is sent after a snapshot is recorded.
type ContentChangedSignal struct {
	content string
}

func (c ContentChangedSignal) Value() string {
	return c.content
}

// UndoSignal carries the content that was replaced by the undo.
type UndoSignal struct {
	contentBefore string
}

func (u UndoSignal) Value() string {
	return u.contentBefore
}

// RedoSignal carries the content that was replaced by the redo.
type RedoSignal struct {
	contentBefore string
}

func (r RedoSignal) Value() string {
	return r.contentBefore
}

type FormatStateSignal struct {
	formats   FormatFlags
	alignment Alignment
}

func (f FormatStateSignal) Value() (formats FormatFlags, alignment Alignment) {
	formats = f.formats
	alignment = f.alignment

	return formats, alignment
}

type LinkDialogSignal struct {
	open bool
}

func (l LinkDialogSignal) Value() bool {
	return l.open
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default:
		logger.Debugf("Editor: signal channel is full, dropping %T", signal)
	}
}
