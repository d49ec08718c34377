package diagram

// Region ids of the default scene.
const (
	RegionSp2NOxidation   = "sp2_n_ox"
	RegionNDealkylation   = "dealk_n"
	RegionAromatic        = "aromatic_ox"
	RegionODealkylation   = "dealk_o"
	RegionSulfurOxidation = "sulfur_ox"
	RegionSDealkylation   = "dealk_s"
	RegionAlkylAlpha      = "alkyl_ox_alpha"
	RegionAlkene          = "alkene_ox"
	RegionAlcohol         = "alcohol_ox"
	RegionAlkylOmega1     = "alkyl_ox_omega_1"
	RegionAlkylOmega      = "alkyl_ox_omega"
)

var hexagon = []Point{{0, -30}, {26, -15}, {26, 15}, {0, 30}, {-26, 15}, {-26, -15}}

var (
	pyridineCenter = Point{150, 200}
	amineNitrogen  = Point{104, 165}
	benzeneCenter  = Point{250, 200}
	methoxyRoot    = Point{250, 170}
	sulfurAtom     = Point{250, 260}
	sideChainRoot  = Point{276, 215}
)

// DefaultScene is the pyridine–benzene molecule with its side chain:
// CN(C)c1cccnc1-c2cc(OC)c(SC)cc2CC=CC(O)CCC.
func DefaultScene() *Scene {
	return &Scene{
		Static: []Element{
			// dimethylamine nitrogen on the top-left pyridine vertex
			Group{Offset: Point{124, 185}, Children: []Element{
				Line{From: Point{0, 0}, To: Point{-20, -20}},
			}},
			Group{Offset: amineNitrogen, Children: []Element{
				Circle{Center: Point{0, 0}, R: 8, Fill: "white"},
				Text{At: Point{0, 5}, Content: "N", Size: 14, Middle: true, Bold: true, Fill: nitrogenColor},
			}},
			// biaryl link
			Line{From: Point{176, 200}, To: Point{224, 200}},
			// thioether: ring to S, S to CH3
			Line{From: Point{250, 230}, To: Point{250, 250}},
			Line{From: Point{248, 260}, To: Point{265, 260}},
			Group{Offset: sideChainRoot, Children: []Element{
				Path{D: "M0,0 L25,15 L50,0 L75,15 L100,0 L125,15 L150,0 L175,15"},
				Line{From: Point{52, 5}, To: Point{73, 18}, Round: true},
				Line{From: Point{100, 0}, To: Point{100, -20}, Round: true},
				Text{At: Point{100, -28}, Content: "OH", Size: 12, Middle: true, Bold: true, Fill: oxygenColor},
			}},
		},
		Regions: []Region{
			{
				ID:     RegionSp2NOxidation,
				Offset: pyridineCenter,
				Elements: []Element{
					Polygon{Points: hexagon},
					Line{From: Point{-20, -12}, To: Point{0, -24}, Width: 1.5},
					Line{From: Point{-20, 12}, To: Point{-4, 22}, Width: 1.5},
					Line{From: Point{20, -12}, To: Point{4, -22}, Width: 1.5},
					Circle{Center: Point{0, 30}, R: 8, Fill: "white"},
					Text{At: Point{0, 34}, Content: "N", Size: 14, Middle: true, Bold: true, Fill: nitrogenColor},
				},
				Highlight: Circle{Center: Point{0, 30}, R: 15},
			},
			{
				ID:     RegionNDealkylation,
				Offset: amineNitrogen,
				Elements: []Element{
					Line{From: Point{0, 0}, To: Point{-15, -10}},
					Text{At: Point{-25, -10}, Content: "CH", Subscript: "3", Size: 10, Bold: true},
					Line{From: Point{0, 0}, To: Point{0, -20}},
					Text{At: Point{-10, -25}, Content: "CH", Subscript: "3", Size: 10, Bold: true},
				},
				Highlight: Circle{Center: Point{-10, -15}, R: 20},
			},
			{
				ID:     RegionAromatic,
				Offset: benzeneCenter,
				Elements: []Element{
					Polygon{Points: hexagon},
					Circle{Center: Point{0, 0}, R: 18, Stroke: 1, Dash: "4,2"},
				},
				Highlight: Circle{Center: Point{0, 0}, R: 25},
			},
			{
				ID:     RegionODealkylation,
				Offset: methoxyRoot,
				Elements: []Element{
					Line{From: Point{0, 0}, To: Point{0, -20}},
					Text{At: Point{0, -25}, Content: "OCH", Subscript: "3", Size: 14, SubscriptSize: 10, Middle: true, Bold: true, Fill: oxygenColor},
				},
				Highlight: Circle{Center: Point{0, -30}, R: 15},
			},
			{
				ID:     RegionSulfurOxidation,
				Offset: sulfurAtom,
				Elements: []Element{
					Text{At: Point{-10, 5}, Content: "S", Size: 14, Middle: true, Bold: true, Fill: sulfurColor},
				},
				Highlight: Circle{Center: Point{-10, 0}, R: 12},
			},
			{
				ID:     RegionSDealkylation,
				Offset: sulfurAtom,
				Elements: []Element{
					Text{At: Point{25, 5}, Content: "CH", Subscript: "3", Size: 12, Middle: true, Bold: true},
				},
				Highlight: Rect{Min: Point{10, -10}, Width: 30, Height: 20, Radius: 5},
			},
			{
				ID:     RegionAlkylAlpha,
				Offset: sideChainRoot,
				Elements: []Element{
					Text{At: Point{25, 35}, Content: "α", Size: 10, Middle: true, Bold: true, Fill: markerColor},
				},
				Highlight: Circle{Center: Point{25, 15}, R: 10},
			},
			{
				ID:        RegionAlkene,
				Offset:    sideChainRoot,
				Highlight: Circle{Center: Point{62.5, 7.5}, R: 18},
			},
			{
				ID:        RegionAlcohol,
				Offset:    sideChainRoot,
				Highlight: Circle{Center: Point{100, -30}, R: 15},
			},
			{
				ID:     RegionAlkylOmega1,
				Offset: sideChainRoot,
				Elements: []Element{
					Text{At: Point{150, -15}, Content: "ω-1", Size: 10, Middle: true, Bold: true, Fill: markerColor},
				},
				Highlight: Circle{Center: Point{150, 0}, R: 10},
			},
			{
				ID:     RegionAlkylOmega,
				Offset: sideChainRoot,
				Elements: []Element{
					Text{At: Point{175, 35}, Content: "ω", Size: 10, Middle: true, Bold: true, Fill: markerColor},
				},
				Highlight: Circle{Center: Point{175, 15}, R: 10},
			},
		},
	}
}
