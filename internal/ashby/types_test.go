package ashby

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRef_ContactFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		candidate     CandidateRef
		expectedEmail string
		expectedPhone string
	}{
		{
			name:          "flat fields win",
			candidate:     CandidateRef{Email: "a@x.io", PrimaryEmailAddress: &ContactInfo{Value: "b@x.io"}, Phone: "1", PrimaryPhoneNumber: &ContactInfo{Value: "2"}},
			expectedEmail: "a@x.io",
			expectedPhone: "1",
		},
		{
			name:          "primary entries as fallback",
			candidate:     CandidateRef{PrimaryEmailAddress: &ContactInfo{Value: "b@x.io"}, PrimaryPhoneNumber: &ContactInfo{Value: "2"}},
			expectedEmail: "b@x.io",
			expectedPhone: "2",
		},
		{
			name:      "nothing set",
			candidate: CandidateRef{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectedEmail, tt.candidate.GetEmail())
			assert.Equal(t, tt.expectedPhone, tt.candidate.GetPhone())
		})
	}
}

func TestApplication_StageTitle(t *testing.T) {
	t.Parallel()

	var nilApp *Application
	assert.Empty(t, nilApp.StageTitle())
	assert.Empty(t, (&Application{}).StageTitle())
	assert.Equal(t, "TA Screen", (&Application{CurrentStage: &Stage{Title: "TA Screen"}}).StageTitle())
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	var nilUser *User
	assert.Empty(t, nilUser.DisplayName())
	assert.Equal(t, "Grace Hopper", (&User{Name: "Grace Hopper", FirstName: "G"}).DisplayName())
	assert.Equal(t, "Grace Hopper", (&User{FirstName: "Grace", LastName: "Hopper"}).DisplayName())
	assert.Equal(t, "Grace", (&User{FirstName: "Grace"}).DisplayName())
}

func TestFeedback_SubmittedTime(t *testing.T) {
	t.Parallel()

	t.Run("rfc3339 with offset is normalized to UTC", func(t *testing.T) {
		t.Parallel()
		f := Feedback{SubmittedAt: "2024-03-01T12:30:00+02:00"}
		got := f.SubmittedTime()
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *got)
	})

	t.Run("fractional seconds", func(t *testing.T) {
		t.Parallel()
		f := Feedback{SubmittedAt: "2024-03-01T10:00:00.123Z"}
		got := f.SubmittedTime()
		require.NotNil(t, got)
		assert.Equal(t, 123*time.Millisecond, time.Duration(got.Nanosecond()))
	})

	t.Run("empty and invalid values", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, (&Feedback{}).SubmittedTime())
		assert.Nil(t, (&Feedback{SubmittedAt: "yesterday"}).SubmittedTime())
	})
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ashby API reported failure for /application.list: no error info",
		(&APIError{Endpoint: EndpointApplicationList}).Error())
	assert.Equal(t, `ashby API reported failure for /application.list: bad; worse {"code":"x"}`,
		(&APIError{Endpoint: EndpointApplicationList, Errors: []string{"bad", "worse"}, ErrorInfo: []byte(`{"code":"x"}`)}).Error())
}

func TestSplitResults(t *testing.T) {
	t.Parallel()

	records, err := splitResults([]byte(`  [ {"id":"1"}, {"id":"2"} ] `))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = splitResults(nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = splitResults([]byte(`[1,`))
	require.Error(t, err)
}
