// Package classify maps failed exchanges of the FusionBrain client to the
// closed error taxonomy in package types.
//
// Classification is scoped per operation: the same status can mean different
// things on different endpoints (404 is EXPIRED only when polling a task, 401
// is UNAUTHORIZED everywhere except the unauthenticated styles listing).
// UNEXPECTED and MODEL_NOT_READY keep the raw response body; the other kinds
// carry a fixed message.
package classify
