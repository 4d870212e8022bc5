/*
 * Copyright © 2026 The qrencode Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

// Logger receives internal diagnostics from Encode. It is deliberately the
// smallest interface that *zap.SugaredLogger already satisfies, so callers
// who use zap elsewhere can pass their existing logger straight through
// with no adapter:
//
//	qrcode.Encode(text, qrcode.Low, qrcode.WithLogger(zapLogger.Sugar()))
//
// The encoder never reaches for a package-level logger itself; every
// diagnostic is routed through whatever Logger the caller injects (or the
// no-op default), since a pure encoding function has no business deciding
// where its diagnostics go.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugw(string, ...interface{}) {}
