// Package testutil provides testing utilities for the voice2site application.
//
// This package contains three components:
//
// 1. Mock collaborators (mock_transcriber.go, mock_completer.go):
//   - MockTranscriber: testify mock of api.Transcriber that also records the staged file path
//   - MockCompleter: testify mock of api.Completer
//
// 2. Mock services (mock_services.go):
//   - MockSiteService: testify mock of the HTTP service layer for handler tests
//
// 3. Test data fixtures (fixtures.go):
//   - WAVFixture: a short valid PCM WAV payload
//   - Sample model replies, clean and wrapped in prose or markdown
//
// # Usage
//
//	completer := testutil.NewMockCompleter(t)
//	completer.On("Complete", mock.Anything, mock.Anything).Return(testutil.ReplyAcme, nil)
package testutil
