package chart

import (
	"fmt"
	"strings"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// summaryAspectLimit сколько аспектов попадает в краткую сводку
const summaryAspectLimit = 5

// sunTexts трактовки Солнца по знакам
var sunTexts = map[domain.ZodiacSign]string{
	domain.SignAries:       "Bold, energetic, and pioneering. You lead with courage and initiative.",
	domain.SignTaurus:      "Grounded, reliable, and sensual. You value stability and comfort.",
	domain.SignGemini:      "Curious, adaptable, and communicative. You thrive on variety and mental stimulation.",
	domain.SignCancer:      "Nurturing, intuitive, and protective. You lead with emotion and care deeply.",
	domain.SignLeo:         "Confident, creative, and charismatic. You shine brightest when expressing yourself.",
	domain.SignVirgo:       "Analytical, practical, and helpful. You excel at refining and improving.",
	domain.SignLibra:       "Diplomatic, harmonious, and fair. You seek balance and beauty in all things.",
	domain.SignScorpio:     "Intense, passionate, and transformative. You dive deep into life's mysteries.",
	domain.SignSagittarius: "Adventurous, optimistic, and philosophical. You seek meaning and expansion.",
	domain.SignCapricorn:   "Ambitious, disciplined, and responsible. You build lasting structures.",
	domain.SignAquarius:    "Innovative, independent, and humanitarian. You envision the future.",
	domain.SignPisces:      "Compassionate, imaginative, and spiritual. You feel deeply and dream big.",
}

// moonTexts трактовки Луны по знакам
var moonTexts = map[domain.ZodiacSign]string{
	domain.SignAries:       "Your emotions are direct and passionate. You need independence.",
	domain.SignTaurus:      "You seek emotional security through comfort and stability.",
	domain.SignGemini:      "You process emotions intellectually and need variety.",
	domain.SignCancer:      "Deeply emotional and nurturing. Home is your sanctuary.",
	domain.SignLeo:         "You need recognition and warmth in your emotional life.",
	domain.SignVirgo:       "You feel secure when things are organized and useful.",
	domain.SignLibra:       "Emotional balance comes through partnership and harmony.",
	domain.SignScorpio:     "Your emotions run deep and intense. You crave intimacy.",
	domain.SignSagittarius: "Emotional freedom and adventure feed your soul.",
	domain.SignCapricorn:   "You find security through achievement and structure.",
	domain.SignAquarius:    "You need emotional space and intellectual connection.",
	domain.SignPisces:      "Ultra-sensitive and empathic. You absorb others' feelings.",
}

// risingTexts трактовки асцендента по знакам
var risingTexts = map[domain.ZodiacSign]string{
	domain.SignAries:       "You come across as bold, direct, and energetic.",
	domain.SignTaurus:      "You appear calm, steady, and approachable.",
	domain.SignGemini:      "You seem curious, talkative, and youthful.",
	domain.SignCancer:      "You give off a caring, protective vibe.",
	domain.SignLeo:         "You have a warm, confident, magnetic presence.",
	domain.SignVirgo:       "You appear helpful, modest, and detail-oriented.",
	domain.SignLibra:       "You come across as charming, diplomatic, and refined.",
	domain.SignScorpio:     "You have an intense, mysterious, magnetic aura.",
	domain.SignSagittarius: "You seem optimistic, adventurous, and frank.",
	domain.SignCapricorn:   "You appear serious, responsible, and composed.",
	domain.SignAquarius:    "You seem unique, friendly, and unconventional.",
	domain.SignPisces:      "You give off a gentle, dreamy, compassionate vibe.",
}

// Summarize собирает человекочитаемую markdown-сводку:
// «большая тройка» (Солнце, Луна, асцендент), позиции планет, главные аспекты.
// При ненадёжных домах трактовка асцендента опускается.
func Summarize(result *domain.ChartResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Natal Chart for %s\n\n", result.Name)

	b.WriteString("## Birth Information\n")
	fmt.Fprintf(&b, "**Date**: %s  \n", result.BirthData.Date)
	fmt.Fprintf(&b, "**Time**: %s  \n", result.BirthData.Time)
	if result.BirthData.City != "" {
		fmt.Fprintf(&b, "**Location**: %s  \n", result.BirthData.City)
	} else {
		fmt.Fprintf(&b, "**Location**: %g, %g  \n", result.BirthData.Lat, result.BirthData.Lon)
	}
	fmt.Fprintf(&b, "**Timezone**: %s\n\n", result.BirthData.Timezone)

	if result.HousesUnreliable {
		b.WriteString("_Birth time unknown: chart computed for noon, houses and rising sign are unreliable._\n\n")
	}

	b.WriteString("## Your Core Identity (Big Three)\n\n")

	if sun := findPlacement(result, "Sun"); sun != nil {
		fmt.Fprintf(&b, "**Sun in %s**: %s\n\n", sun.Sign, sunTexts[sun.Sign])
	}
	if moon := findPlacement(result, "Moon"); moon != nil {
		fmt.Fprintf(&b, "**Moon in %s**: %s\n\n", moon.Sign, moonTexts[moon.Sign])
	}
	if !result.HousesUnreliable && len(result.Houses) > 0 {
		rising := result.Houses[0].Sign
		fmt.Fprintf(&b, "**Rising %s**: %s\n\n", rising, risingTexts[rising])
	}

	b.WriteString("## Planetary Placements\n\n")
	for _, p := range result.Planets {
		retro := ""
		if p.Retrograde {
			retro = " R"
		}
		fmt.Fprintf(&b, "**%s**: %s at %.2f° (House %d)%s\n\n", p.Name, p.Sign, p.Position, p.House, retro)
	}

	if len(result.Aspects) > 0 {
		b.WriteString("## Major Aspects\n\n")
		limit := summaryAspectLimit
		if len(result.Aspects) < limit {
			limit = len(result.Aspects)
		}
		for _, a := range result.Aspects[:limit] {
			fmt.Fprintf(&b, "- %s - %s: %s (orb %.2f°)\n", a.Planet1, a.Planet2, a.Aspect, a.Orb)
		}
	}

	return b.String()
}

// findPlacement находит позицию тела в готовом результате
func findPlacement(result *domain.ChartResult, name string) *domain.Placement {
	for i := range result.Planets {
		if result.Planets[i].Name == name {
			return &result.Planets[i]
		}
	}
	return nil
}
