// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"
	"time"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

// Session drives the request/response exchange with the instrument: send a
// read or write request, collect the framed reply, retry on timeout or a
// corrupt frame.
type Session struct {
	conn    Connection
	timeout time.Duration
	retries int

	bytes   chan byte
	readErr chan error
}

// NewSession starts a session over an open connection. A background reader
// pumps the connection into the session; the session owns the read side of
// the connection from here on.
func NewSession(conn Connection) *Session {
	s := &Session{
		conn:    conn,
		timeout: 2 * time.Second,
		retries: 2,
		bytes:   make(chan byte, 256),
		readErr: make(chan error, 1),
	}
	go s.pump()
	return s
}

func (s *Session) pump() {
	buf := make([]byte, 64)
	for {
		n, err := s.conn.Read(buf)
		if err != nil {
			s.readErr <- err
			return
		}
		for _, b := range buf[:n] {
			s.bytes <- b
		}
	}
}

// ReadBlockRaw requests one block and returns the verified 32-byte frame.
func (s *Session) ReadBlockRaw(id byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if _, err := s.conn.Write(telegram.ReadRequest(id)); err != nil {
			return nil, fmt.Errorf("send read request: %w", err)
		}
		frame, err := s.awaitFrame()
		if err != nil {
			lastErr = err
			continue
		}
		if frame[0] != id {
			lastErr = fmt.Errorf("instrument answered with block 0x%02X", frame[0])
			continue
		}
		return frame, nil
	}
	return nil, fmt.Errorf("read block 0x%02X: %w", id, lastErr)
}

// ReadBlock requests the block's telegram and decodes it in place.
func (s *Session) ReadBlock(b *telegram.Block) error {
	frame, err := s.ReadBlockRaw(b.ID())
	if err != nil {
		return err
	}
	return b.Decode(frame)
}

// ReadConfig reads all eight blocks of the configuration.
func (s *Session) ReadConfig(cfg *telegram.Config) error {
	for _, b := range cfg.Blocks() {
		if err := s.ReadBlock(b); err != nil {
			return fmt.Errorf("%s: %w", b.Name(), err)
		}
	}
	return nil
}

// WriteBlock stores a block on the instrument and waits for the ACK.
func (s *Session) WriteBlock(b *telegram.Block) error {
	if b.ReadOnly() {
		return fmt.Errorf("%s: %w", b.Name(), telegram.ErrReadOnly)
	}
	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if _, err := s.conn.Write(telegram.WriteRequest(b)); err != nil {
			return fmt.Errorf("send write request: %w", err)
		}
		if err := s.awaitAck(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("write %s: %w", b.Name(), lastErr)
}

// awaitFrame collects bytes into the next verified telegram frame.
func (s *Session) awaitFrame() ([]byte, error) {
	dec := telegram.NewLinkDecoder()
	deadline := time.After(s.timeout)
	for {
		select {
		case b := <-s.bytes:
			frame, err := dec.DecodeByte(b)
			if err != nil {
				return nil, err
			}
			if frame != nil {
				return frame, nil
			}
		case err := <-s.readErr:
			return nil, err
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for telegram")
		}
	}
}

// awaitAck waits for the instrument's ACK/NAK answer to a write.
func (s *Session) awaitAck() error {
	deadline := time.After(s.timeout)
	for {
		select {
		case b := <-s.bytes:
			switch b {
			case telegram.ACK:
				return nil
			case telegram.NAK:
				return fmt.Errorf("instrument rejected write (NAK)")
			}
			// Stray stream bytes between frames are ignored.
		case err := <-s.readErr:
			return err
		case <-deadline:
			return fmt.Errorf("timeout waiting for ACK")
		}
	}
}
