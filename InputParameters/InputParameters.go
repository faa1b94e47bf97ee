package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/nodaldg/element"
	"github.com/notargets/nodaldg/utils"
)

// BatchParameters are read from a YAML batch request file like:
//
//	Title: "Reference elements"
//	Elements:
//	  - Kind: triangle
//	    Orders: [1, 2, 3]
//	  - Kind: hex
//	    MaxOrder: 4
type BatchParameters struct {
	Title    string            `json:"Title"`
	Elements []ElementRequests `json:"Elements"`
}

// ElementRequests names one cell kind and the orders to build for it. When
// MaxOrder is set every order from the kind's minimum up to MaxOrder is added.
type ElementRequests struct {
	Kind     string `json:"Kind"`
	Orders   []int  `json:"Orders,omitempty"`
	MaxOrder int    `json:"MaxOrder,omitempty"`
}

// Request is one (kind, order) pair to build
type Request struct {
	Kind  element.CellKind
	Order int
}

func (r Request) String() string { return fmt.Sprintf("%v order %d", r.Kind, r.Order) }

func (bp *BatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

// Requests expands the file into sorted, unique requests. Unknown kinds and
// orders below a kind's minimum are errors.
func (bp *BatchParameters) Requests() (R []Request, err error) {
	seen := make(map[Request]bool)
	add := func(kind element.CellKind, N int) (err error) {
		var minOrder int
		if minOrder, err = element.MinOrder(kind); err != nil {
			return
		}
		if N < minOrder {
			return fmt.Errorf("%w: %v order %d is below the minimum order %d",
				utils.ErrInvalidArgument, kind, N, minOrder)
		}
		r := Request{kind, N}
		if !seen[r] {
			seen[r] = true
			R = append(R, r)
		}
		return
	}
	for _, er := range bp.Elements {
		var kind element.CellKind
		if kind, err = element.ParseCellKind(er.Kind); err != nil {
			return nil, err
		}
		for _, N := range er.Orders {
			if err = add(kind, N); err != nil {
				return nil, err
			}
		}
		if er.MaxOrder != 0 {
			minOrder, _ := element.MinOrder(kind)
			for N := minOrder; N <= er.MaxOrder; N++ {
				if err = add(kind, N); err != nil {
					return nil, err
				}
			}
		}
	}
	sort.Slice(R, func(i, j int) bool {
		if R[i].Kind != R[j].Kind {
			return R[i].Kind < R[j].Kind
		}
		return R[i].Order < R[j].Order
	})
	return
}

func (bp *BatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	for _, er := range bp.Elements {
		fmt.Printf("[%s]\t\t= Kind, Orders = %v, MaxOrder = %d\n", er.Kind, er.Orders, er.MaxOrder)
	}
}
