package insight

import (
	"context"
	"time"

	"github.com/etnz/balancete/trace"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Observed wraps a generator with logging and tracing.
func Observed(gen Generator, log logrus.FieldLogger) Generator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		ctx, span := trace.StartSpan(ctx, "insight.Generate")
		defer span.End()
		span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

		start := time.Now()
		log.WithField("prompt_length", len(prompt)).Debug("requesting insight")

		text, err := gen.Generate(ctx, prompt)
		fields := logrus.Fields{"duration": time.Since(start).String()}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.WithFields(fields).WithError(err).Warn("insight request failed")
			return "", err
		}
		span.SetAttributes(attribute.Int("answer.length", len(text)))
		fields["answer_length"] = len(text)
		log.WithFields(fields).Info("insight received")
		return text, nil
	})
}
