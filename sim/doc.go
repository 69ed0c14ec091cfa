// Package sim implements a discrete-event simulation of a reservation-based
// multiple-access protocol. Stations contend for a shared, time-slotted
// broadcast medium in two stages: head-of-line packets first claim access on
// a mini-slot reservation channel using slotted ALOHA with collision
// detection and binary exponential backoff, and winners are then served
// first-come-first-served on a disjoint, continuously available data channel.
//
// Execution is single-threaded: a virtual clock advances through a
// priority-ordered event queue, and each event handler runs to completion
// before the next is selected. Events scheduled for the same instant execute
// in insertion order, which makes runs bit-for-bit reproducible for a given
// seed and configuration.
package sim
