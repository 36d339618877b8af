// Package notifsrvc emits an out-of-band alert for each new intake
// submission. The delivery mechanism is provider-agnostic; the service
// layer depends only on the Sender capability and treats failures as
// non-fatal.
package notifsrvc

import (
	"context"

	"github.com/opsfront/intake-backend/intake"
)

type Sender interface {
	Send(ctx context.Context, subm intake.Submission) error
}
