// Package testutil provides test doubles for the run and bundle backends and
// small helpers for building documents in tests.
//
// Two styles are available:
//   - MockRunner / MockBundler embed testify's mock.Mock for expectation based tests
//   - RecordingRunner / RecordingBundler answer from a function and record every call,
//     for pipeline tests that only care about the order of invocations
package testutil
