// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package portable holds the pure software versions of operations that have
// a hardware fast path on some targets. It is always compiled, so the fast
// paths can be checked against it on any build.
package portable
