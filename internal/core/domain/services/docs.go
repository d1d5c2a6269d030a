// Package services provides domain services for the restaurant system.
//
// The central service is OrderingSystem, which owns the customer registry,
// the menu catalog, the FIFO queue of open orders, and the list of closed
// orders. It coordinates the Order aggregate's lifecycle: enqueueing, queue
// processing, status advancement, cancellation, and payment selection always
// operate on the head of the queue, preserving strict FIFO sequencing.
//
// The service performs no internal locking; serialization of concurrent
// callers is the responsibility of the surrounding application layer.
package services
