package rights

import (
	"errors"
	"testing"
)

func TestPolicyFor(t *testing.T) {
	if p := PolicyFor("music"); !p.RequiresReconciliation || !p.RequiresConfirmation {
		t.Errorf("PolicyFor(music) = %+v, want both requirements", p)
	}
	for _, pt := range []string{"art", "writing", "video", "", "Music"} {
		if p := PolicyFor(pt); p.RequiresReconciliation || p.RequiresConfirmation {
			t.Errorf("PolicyFor(%q) = %+v, want no requirements", pt, p)
		}
	}
}

func TestValidateSubmission(t *testing.T) {
	reconciled := func() *Payload {
		l := NewLedger()
		l.AddAuthorshipHolder(Authors, 30)
		l.UpdateHolder(Authors, 0, FieldName, "Ada")
		p := l.ToSubmissionPayload()
		return &p
	}
	overAllocated := func() *Payload {
		p := reconciled()
		p.Authorship.Authors[0].Percentage = 45
		return p
	}

	music := PolicyFor("music")
	tests := []struct {
		name      string
		payload   *Payload
		confirmed bool
		policy    Policy
		wantTotal int // non-zero means a ReconciliationError is expected
		wantErr   error
	}{
		{name: "music reconciled and confirmed", payload: reconciled(), confirmed: true, policy: music},
		{name: "music unconfirmed", payload: reconciled(), policy: music, wantErr: ErrConfirmationRequired},
		{name: "music over-allocated", payload: overAllocated(), confirmed: true, policy: music, wantTotal: 115},
		{name: "music without payload", payload: nil, confirmed: true, policy: music, wantTotal: -1},
		{name: "non-music over-allocated", payload: overAllocated(), policy: Policy{}},
		{name: "non-music without payload", payload: nil, policy: Policy{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.payload, tt.confirmed, tt.policy)

			if tt.wantTotal != 0 {
				var recErr *ReconciliationError
				if !errors.As(err, &recErr) {
					t.Fatalf("error = %v, want *ReconciliationError", err)
				}
				if tt.wantTotal > 0 && recErr.Total != tt.wantTotal {
					t.Errorf("ReconciliationError.Total = %d, want %d", recErr.Total, tt.wantTotal)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubmissionRejectsMalformedPayloads(t *testing.T) {
	base := func() Payload { return NewLedger().ToSubmissionPayload() }

	negative := base()
	negative.Authorship.MainHolderPercentage = 110
	negative.Authorship.Authors = []Holder{{Name: "Ada", Percentage: -10}}

	roleOnComposer := base()
	roleOnComposer.Authorship.Composers = []Holder{{Name: "Miles", Percentage: 0, Role: "trumpet"}}

	var valueErr *InvalidValueError
	if err := ValidateSubmission(&negative, true, Policy{}); !errors.As(err, &valueErr) {
		t.Errorf("out-of-bounds payload: error = %v, want *InvalidValueError", err)
	}

	var fieldErr *InvalidFieldError
	if err := ValidateSubmission(&roleOnComposer, true, Policy{}); !errors.As(err, &fieldErr) {
		t.Errorf("role on composer: error = %v, want *InvalidFieldError", err)
	}
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr any
	}{
		{name: "fresh ledger", payload: NewLedger().State()},
		{
			name: "placeholders are fine",
			payload: Payload{Authorship: AuthorshipAllocation{
				MainHolderPercentage: 85,
				Authors:              []Holder{{Name: "", Percentage: 15}},
			}},
		},
		{
			name:    "main holder above 100",
			payload: Payload{Authorship: AuthorshipAllocation{MainHolderPercentage: 500}},
			wantErr: new(*InvalidValueError),
		},
		{
			name: "negative holder",
			payload: Payload{Authorship: AuthorshipAllocation{
				MainHolderPercentage: 100,
				Authors:              []Holder{{Name: "A", Percentage: -400}},
			}},
			wantErr: new(*InvalidValueError),
		},
		{
			name: "role on author",
			payload: Payload{Authorship: AuthorshipAllocation{
				MainHolderPercentage: 85,
				Authors:              []Holder{{Name: "A", Percentage: 15, Role: "boss"}},
			}},
			wantErr: new(*InvalidFieldError),
		},
		{
			name: "role on others",
			payload: Payload{NeighboringRights: NeighboringRightsAllocation{
				Others: []Holder{{Name: "Rudy", Percentage: 5, Role: "engineer"}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.As(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %T", err, tt.wantErr)
			}
		})
	}
}

func TestReconciliationErrorMessage(t *testing.T) {
	err := &ReconciliationError{Total: 125}
	if got, want := err.Error(), "total must equal 100%, currently 125%"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
