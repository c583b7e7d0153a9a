package client

import (
	"bufio"
	"context"
	"io"
)

// SubscribeToFileInput streams input line by line. The lines channel is
// closed at end of input, after which errChan yields the read error, or nil.
func SubscribeToFileInput(ctx context.Context, input io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errChan <- nil
				return
			}
		}
		errChan <- scanner.Err()
	}()

	return lines, errChan
}
