// Package core contains pipeline plumbing utilities: channel feed/collect
// helpers, logger propagation via context, and the locomotive worker loop
// driven by a bounded pool. It does not define business logic; it provides
// the scaffolding the drive package uses to run tasks with controlled
// concurrency.
package core
