package sezim

import (
	"gonum.org/v1/gonum/mat"
)

// EmotionVector returns the summed emotion counts as a vector in canonical tag
// order.
func (r TextAnalysisResult) EmotionVector() *mat.VecDense {
	return r.Emotions.Vector()
}

// Vector returns the scores as a vector in canonical tag order.
func (s EmotionScores) Vector() *mat.VecDense {
	data := make([]float64, numEmotions)
	for i, v := range s {
		data[i] = float64(v)
	}
	return mat.NewVecDense(numEmotions, data)
}

// EmotionDistribution returns each tag's share of all emotion hits. Every
// share is zero when no emotion was seen.
func (r TextAnalysisResult) EmotionDistribution() map[Emotion]float64 {
	dist := make(map[Emotion]float64, numEmotions)
	v := r.EmotionVector()
	total := mat.Sum(v)
	if total > 0 {
		v.ScaleVec(1/total, v)
	}
	for i, emo := range Emotions {
		dist[emo] = v.AtVec(i)
	}
	return dist
}

// DominantEmotions returns the tags that share the highest nonzero count, in
// canonical order.
func (r TextAnalysisResult) DominantEmotions() []Emotion {
	v := r.EmotionVector()
	top := mat.Max(v)
	if top == 0 {
		return nil
	}
	var out []Emotion
	for i, emo := range Emotions {
		if v.AtVec(i) == top {
			out = append(out, emo)
		}
	}
	return out
}

// EmotionSimilarity returns the cosine similarity of the emotion profiles of a
// and b, in [0, 1]. It is zero when either text has no emotion hits.
func EmotionSimilarity(a, b TextAnalysisResult) float64 {
	va, vb := a.EmotionVector(), b.EmotionVector()
	na, nb := mat.Norm(va, 2), mat.Norm(vb, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return mat.Dot(va, vb) / (na * nb)
}
