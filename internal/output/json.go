package output

import (
	"io"

	"github.com/aurceive/d2-crafting-cost/internal/domain"

	"github.com/bytedance/sonic"
)

type jsonCost struct {
	Resource string `json:"resource"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Cost     int    `json:"cost"`
}

type jsonStep struct {
	Level int        `json:"level"`
	Costs []jsonCost `json:"costs"`
}

type jsonSource struct {
	Source string `json:"source"`
	Yield  int    `json:"yield"`
	Uses   int    `json:"uses"`
}

type jsonResourceSources struct {
	Resource string       `json:"resource"`
	Amount   int          `json:"amount"`
	Sources  []jsonSource `json:"sources"`
}

type jsonPlan struct {
	StartLevel int                   `json:"start_level"`
	EndLevel   int                   `json:"end_level"`
	Totals     []jsonCost            `json:"totals"`
	Steps      []jsonStep            `json:"steps,omitempty"`
	Sources    []jsonResourceSources `json:"sources"`
}

func toJSONCosts(costs []domain.ResourceCost) []jsonCost {
	out := make([]jsonCost, 0, len(costs))
	for _, c := range costs {
		icon, _ := domain.Icon(c.Resource)
		out = append(out, jsonCost{Resource: c.Resource.Key(), Name: c.Resource.String(), Icon: icon, Cost: c.Cost})
	}
	return out
}

func toJSONPlan(plan domain.Plan) jsonPlan {
	jp := jsonPlan{
		StartLevel: plan.Config.StartLevel,
		EndLevel:   plan.Config.EndLevel,
		Totals:     toJSONCosts(plan.Totals),
		Sources:    make([]jsonResourceSources, 0, len(plan.Sources)),
	}
	for _, s := range plan.Steps {
		jp.Steps = append(jp.Steps, jsonStep{Level: s.Level, Costs: toJSONCosts(s.Costs)})
	}
	for _, rs := range plan.Sources {
		srcs := make([]jsonSource, 0, len(rs.Sources))
		for _, s := range rs.Sources {
			srcs = append(srcs, jsonSource{Source: s.Source.Source, Yield: s.Source.Amount, Uses: s.Amount})
		}
		jp.Sources = append(jp.Sources, jsonResourceSources{Resource: rs.Resource.Key(), Amount: rs.Amount, Sources: srcs})
	}
	return jp
}

// MarshalPlanJSON encodes plan as indented JSON.
func MarshalPlanJSON(plan domain.Plan) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(toJSONPlan(plan), "", "  ")
}

// WritePlanJSON writes plan as indented JSON followed by a newline.
func WritePlanJSON(w io.Writer, plan domain.Plan) error {
	b, err := MarshalPlanJSON(plan)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
