package progress_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/entityloader/progress"
)

type publishedMsg struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs []publishedMsg
	err  error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, publishedMsg{subject: subject, data: data})
	return nil
}

type recorder struct {
	events []progress.Event
	err    error
}

func (r *recorder) Report(_ context.Context, ev progress.Event) error {
	r.events = append(r.events, ev)
	return r.err
}

func sampleEvent() progress.Event {
	return progress.Event{
		Count:      2,
		IRI:        "http://registry.example/entity/r-2",
		RegistryID: "r-2",
		Time:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := progress.NewLogReporter(logger).Report(context.Background(), sampleEvent())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Updated 2 entity at URL: http://registry.example/entity/r-2")
	assert.Contains(t, buf.String(), "registry_id=r-2")
}

func TestNATSReporter_Publishes(t *testing.T) {
	pub := &fakePublisher{}
	r := progress.NewNATSReporter(pub, "")

	require.NoError(t, r.Report(context.Background(), sampleEvent()))
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, progress.DefaultSubject, pub.msgs[0].subject)

	var got progress.Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &got))
	assert.Equal(t, sampleEvent(), got)
}

func TestNATSReporter_CustomSubjectAndErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection closed")}
	r := progress.NewNATSReporter(pub, "custom.subject")

	err := r.Report(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "publish progress event")
}

func TestNATSReporter_NilPublisher(t *testing.T) {
	r := progress.NewNATSReporter(nil, "")
	assert.NoError(t, r.Report(context.Background(), sampleEvent()))
}

func TestMulti(t *testing.T) {
	first := &recorder{err: errors.New("first failed")}
	second := &recorder{}
	m := progress.Multi{first, nil, second, progress.Discard}

	err := m.Report(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "first failed")
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1, "later reporters still run")
}
