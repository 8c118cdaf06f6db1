/*
 * MIT License
 *
 * Copyright (c) 2024-2026 Janus Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

// Mailbox defines the actor mailbox. Implementations must allow many
// concurrent producers and exactly one consumer at a time.
type Mailbox interface {
	// Enqueue places the given envelope in the mailbox. It returns
	// ErrMailboxClosed once the mailbox has been disposed.
	Enqueue(envelope *Envelope) error
	// Dequeue takes the next envelope from the mailbox, or nil when the
	// mailbox is empty. Only the owning processing loop may call Dequeue.
	Dequeue() *Envelope
	// IsEmpty returns true when the mailbox is empty.
	IsEmpty() bool
	// Len returns the number of envelopes in the mailbox.
	Len() int64
	// Dispose closes the mailbox for new envelopes. Once it returns, no
	// concurrent Enqueue can add an envelope anymore; pending envelopes
	// remain dequeueable so the owner can drain them.
	Dispose()
}
