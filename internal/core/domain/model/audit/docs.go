// Package audit provides the immutable audit trail entities recorded by
// every lifecycle mutation: the Event entry itself and the best-effort
// Actor identity of the caller.
package audit
