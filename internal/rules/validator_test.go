package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scm/internal/models"
)

func validDraft() *models.CampaignDraft {
	return &models.CampaignDraft{
		Name:      "Summer Launch",
		StartDate: "2025-06-01T00:00:00Z",
		EndDate:   "2025-06-30T23:59:59Z",
		ScreenIDs: []string{"screen-1", "screen-2"},
		TimeSlots: []models.TimeSlot{
			{StartTime: "08:00", EndTime: "12:00"},
			{StartTime: "14:00", EndTime: "18:00"},
		},
		MediaAsset: models.MediaAsset{
			URL:      "https://cdn.example.com/summer.mp4",
			Type:     models.MediaTypeVideo,
			SizeInMB: 20,
		},
	}
}

func codes(errs []models.ValidationError) []models.ValidationErrorCode {
	out := make([]models.ValidationErrorCode, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestValidateValidDraftHasNoErrors(t *testing.T) {
	assert.Empty(t, Validate(validDraft()))
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.CampaignDraft)
		want   []models.ValidationErrorCode
	}{
		{
			name:   "blank name",
			mutate: func(d *models.CampaignDraft) { d.Name = "   " },
			want:   []models.ValidationErrorCode{models.CodeEmptyName},
		},
		{
			name:   "unparseable start date",
			mutate: func(d *models.CampaignDraft) { d.StartDate = "next monday" },
			want:   []models.ValidationErrorCode{models.CodeInvalidDateFormat},
		},
		{
			name: "both dates unparseable report once",
			mutate: func(d *models.CampaignDraft) {
				d.StartDate = ""
				d.EndDate = "31/12/2025"
			},
			want: []models.ValidationErrorCode{models.CodeInvalidDateFormat},
		},
		{
			name: "start after end",
			mutate: func(d *models.CampaignDraft) {
				d.StartDate = "2025-07-01"
				d.EndDate = "2025-06-01"
			},
			want: []models.ValidationErrorCode{models.CodeInvalidDateRange},
		},
		{
			name: "start equals end",
			mutate: func(d *models.CampaignDraft) {
				d.StartDate = "2025-06-01T10:00:00Z"
				d.EndDate = "2025-06-01T10:00:00Z"
			},
			want: []models.ValidationErrorCode{models.CodeInvalidDateRange},
		},
		{
			name: "offset-aware dates compare as instants",
			mutate: func(d *models.CampaignDraft) {
				d.StartDate = "2025-06-01T10:00:00+02:00"
				d.EndDate = "2025-06-01T09:00:00Z"
			},
			want: nil,
		},
		{
			name:   "no screens",
			mutate: func(d *models.CampaignDraft) { d.ScreenIDs = nil },
			want:   []models.ValidationErrorCode{models.CodeEmptyScreenSelection},
		},
		{
			name: "overlapping slots",
			mutate: func(d *models.CampaignDraft) {
				d.TimeSlots = []models.TimeSlot{
					{StartTime: "08:00", EndTime: "12:00"},
					{StartTime: "11:00", EndTime: "15:00"},
				}
			},
			want: []models.ValidationErrorCode{models.CodeOverlappingTimeSlots},
		},
		{
			name: "touching slots do not overlap",
			mutate: func(d *models.CampaignDraft) {
				d.TimeSlots = []models.TimeSlot{
					{StartTime: "08:00", EndTime: "12:00"},
					{StartTime: "12:00", EndTime: "15:00"},
				}
			},
			want: nil,
		},
		{
			name: "overlap found regardless of input order",
			mutate: func(d *models.CampaignDraft) {
				d.TimeSlots = []models.TimeSlot{
					{StartTime: "18:00", EndTime: "20:00"},
					{StartTime: "06:00", EndTime: "09:00"},
					{StartTime: "08:30", EndTime: "10:00"},
				}
			},
			want: []models.ValidationErrorCode{models.CodeOverlappingTimeSlots},
		},
		{
			name: "each malformed slot reported and overlap skipped",
			mutate: func(d *models.CampaignDraft) {
				d.TimeSlots = []models.TimeSlot{
					{StartTime: "24:00", EndTime: "25:00"},
					{StartTime: "08:00", EndTime: "12:00"},
					{StartTime: "09:00", EndTime: "11:00"},
					{StartTime: "13:00", EndTime: "13:00"},
					{StartTime: "8:00", EndTime: "09:00"},
				}
			},
			want: []models.ValidationErrorCode{
				models.CodeInvalidTimeFormat,
				models.CodeInvalidTimeFormat,
				models.CodeInvalidTimeFormat,
			},
		},
		{
			name:   "media at limit passes",
			mutate: func(d *models.CampaignDraft) { d.MediaAsset.SizeInMB = 50 },
			want:   nil,
		},
		{
			name:   "media just over limit",
			mutate: func(d *models.CampaignDraft) { d.MediaAsset.SizeInMB = 50.0001 },
			want:   []models.ValidationErrorCode{models.CodeMediaSizeExceedsLimit},
		},
		{
			name: "media size and type together",
			mutate: func(d *models.CampaignDraft) {
				d.MediaAsset.SizeInMB = 120
				d.MediaAsset.Type = "audio"
			},
			want: []models.ValidationErrorCode{models.CodeMediaSizeExceedsLimit, models.CodeMediaTypeNotAllowed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			got := Validate(d)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, codes(got))
		})
	}
}

func TestValidateConcatenatesInRuleOrder(t *testing.T) {
	d := &models.CampaignDraft{
		Name:      "",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-01",
		ScreenIDs: []string{},
		TimeSlots: []models.TimeSlot{{StartTime: "10:00", EndTime: "09:00"}},
		MediaAsset: models.MediaAsset{
			Type:     "gif",
			SizeInMB: 51,
		},
	}

	got := Validate(d)
	require.Len(t, got, 6)
	assert.Equal(t, []models.ValidationErrorCode{
		models.CodeEmptyName,
		models.CodeInvalidDateRange,
		models.CodeEmptyScreenSelection,
		models.CodeInvalidTimeFormat,
		models.CodeMediaSizeExceedsLimit,
		models.CodeMediaTypeNotAllowed,
	}, codes(got))
	for _, e := range got {
		assert.NotEmpty(t, e.Message)
	}
}

func TestValidateDoesNotMutateDraft(t *testing.T) {
	d := validDraft()
	d.TimeSlots = []models.TimeSlot{
		{StartTime: "14:00", EndTime: "18:00"},
		{StartTime: "08:00", EndTime: "12:00"},
	}
	Validate(d)
	assert.Equal(t, "14:00", d.TimeSlots[0].StartTime)
}

func TestValidateEmptyDraft(t *testing.T) {
	got := Validate(models.NewEmptyDraft())
	assert.Equal(t, []models.ValidationErrorCode{
		models.CodeEmptyName,
		models.CodeInvalidDateFormat,
		models.CodeMediaTypeNotAllowed,
	}, codes(got))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "12:30", want: 750},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1:30", wantErr: true},
		{in: "12-30", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{
		"2025-06-01",
		"2025-06-01T10:00",
		"2025-06-01T10:00:00",
		"2025-06-01T10:00:00.123",
		"2025-06-01T10:00:00Z",
		"2025-06-01T10:00:00.5+05:30",
	} {
		_, err := ParseDate(in)
		assert.NoError(t, err, in)
	}
	for _, in := range []string{"", "   ", "2025-13-01", "June 1st", "2025/06/01"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}
