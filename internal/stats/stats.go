// Package stats recomputes per-question distributions from scratch on every
// read. Aggregation never fails: a question with zero responses yields
// zero-valued stats.
package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"quicksurvey/internal/model"
)

// Aggregate computes the distribution for one question over all responses.
//
// Option-based questions count votes per option, with checkboxes answers
// contributing one vote per selected option — Total therefore counts votes,
// not respondents. Scale questions report average, the standard even-count
// median (mean of the two middle elements), and a zero-filled histogram over
// [min,max]. Text and date questions report answer counts only; they are
// tabulated, not charted.
func Aggregate(q *model.Question, responses []*model.Response) model.QuestionStats {
	st := model.QuestionStats{
		QuestionID: q.ID,
		Title:      q.Title,
		Type:       q.Type,
	}

	switch {
	case q.Type.HasOptions():
		aggregateOptions(q, responses, &st)
	case q.Type == model.QuestionTypeLinearScale:
		aggregateScale(q, responses, &st)
	default:
		for _, r := range responses {
			if a := r.Answer(q.ID); a != nil && !a.Empty() {
				st.ResponseCount++
			}
		}
		st.Total = st.ResponseCount
	}

	return st
}

// AggregateSurvey runs Aggregate over every chartable question of the survey.
func AggregateSurvey(s *model.Survey, responses []*model.Response) model.SurveyStats {
	out := model.SurveyStats{
		SurveyID:      s.ID,
		ResponseCount: len(responses),
		Questions:     []model.QuestionStats{},
	}
	for i := range s.Questions {
		q := &s.Questions[i]
		if !q.Type.Chartable() {
			continue
		}
		out.Questions = append(out.Questions, Aggregate(q, responses))
	}
	return out
}

func aggregateOptions(q *model.Question, responses []*model.Response, st *model.QuestionStats) {
	counts := make(map[string]int, len(q.Options))
	for _, o := range q.Options {
		counts[o.ID] = 0
	}

	for _, r := range responses {
		a := r.Answer(q.ID)
		if a == nil || a.Empty() {
			continue
		}
		st.ResponseCount++

		if q.Type == model.QuestionTypeCheckboxes {
			for _, optionID := range a.CheckboxValues {
				if _, ok := counts[optionID]; ok {
					counts[optionID]++
				}
			}
		} else if _, ok := counts[a.ChoiceValue]; ok {
			counts[a.ChoiceValue]++
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	st.Total = total

	st.Options = make([]model.OptionCount, 0, len(q.Options))
	for _, o := range q.Options {
		n := counts[o.ID]
		pct := 0.0
		if total > 0 {
			pct = roundOneDecimal(100 * float64(n) / float64(total))
		}
		st.Options = append(st.Options, model.OptionCount{
			OptionID:   o.ID,
			Text:       o.Text,
			Count:      n,
			Percentage: pct,
		})
	}
}

func aggregateScale(q *model.Question, responses []*model.Response, st *model.QuestionStats) {
	counts := make(map[int]int, q.Max-q.Min+1)
	for v := q.Min; v <= q.Max; v++ {
		counts[v] = 0
	}

	var values []float64
	for _, r := range responses {
		a := r.Answer(q.ID)
		if a == nil || a.ScaleValue == nil {
			continue
		}
		v := *a.ScaleValue
		values = append(values, float64(v))
		if _, ok := counts[v]; ok {
			counts[v]++
		}
	}

	st.ResponseCount = len(values)
	st.Total = len(values)

	scale := &model.ScaleStats{Min: q.Min, Max: q.Max}
	if len(values) > 0 {
		if avg, err := mstats.Mean(values); err == nil {
			scale.Average = avg
		}
		if med, err := mstats.Median(values); err == nil {
			scale.Median = med
		}
	}

	scale.Counts = make([]model.ValueCount, 0, q.Max-q.Min+1)
	for v := q.Min; v <= q.Max; v++ {
		scale.Counts = append(scale.Counts, model.ValueCount{Value: v, Count: counts[v]})
	}
	st.Scale = scale
}

func roundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
