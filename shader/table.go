package shader

// ProgramKind identifies a program in the Default table.
type ProgramKind int

const (
	ProgramLine ProgramKind = iota
	ProgramCircle
	ProgramArc
	ProgramV3
	NumPrograms
)

func (p ProgramKind) String() string { return Default.ProgramName(p) }

// ShaderKind identifies a shader in the Default table.
type ShaderKind int

const (
	ShaderLineVert ShaderKind = iota
	ShaderLineFrag
	ShaderCircleVert
	ShaderCircleFrag
	ShaderArcVert
	ShaderArcFrag
	ShaderV3Vert
	ShaderV3Frag
	NumShaders
)

// UniformKind identifies a uniform in the Default table.
type UniformKind int

const (
	UniformLineScreenTransform UniformKind = iota
	UniformCircleScreenTransform
	UniformArcScreenTransform
	UniformV3ScreenTransform
	UniformV3Test
	NumUniforms
)

// AttributeKind identifies an attribute in the Default table.
type AttributeKind int

const (
	AttributeLinePosition AttributeKind = iota
	AttributeLineNormal
	AttributeLineColor
	AttributeCircleCenterPoint
	AttributeCircleDiff
	AttributeCircleColor
	AttributeCircleRadius
	AttributeArcStartPoint
	AttributeArcCenterPoint
	AttributeArcPosition
	AttributeArcColor
	AttributeArcDiffAngle
	AttributeArcRadius
	AttributeV3Position
	AttributeV3Normal
	AttributeV3Color
	NumAttributes
)

// ScreenTransforms lists the screenTransform uniform of every program.
var ScreenTransforms = [...]UniformKind{
	UniformLineScreenTransform,
	UniformCircleScreenTransform,
	UniformArcScreenTransform,
	UniformV3ScreenTransform,
}

// Default is the shader table the application is built with.
var Default = &Description{
	Programs: []ProgramInfo{
		ProgramLine:   {Name: "line"},
		ProgramCircle: {Name: "circle"},
		ProgramArc:    {Name: "arc"},
		ProgramV3:     {Name: "v3"},
	},
	Shaders: []ShaderInfo{
		ShaderLineVert:   {Name: "line_vert", Stage: StageVertex, Source: Source{Text: lineVertexSource}},
		ShaderLineFrag:   {Name: "line_frag", Stage: StageFragment, Source: Source{Text: lineFragmentSource}},
		ShaderCircleVert: {Name: "circle_vert", Stage: StageVertex, Source: Source{Text: circleVertexSource}},
		ShaderCircleFrag: {Name: "circle_frag", Stage: StageFragment, Source: Source{Text: circleFragmentSource}},
		ShaderArcVert:    {Name: "arc_vert", Stage: StageVertex, Source: Source{Text: arcVertexSource}},
		ShaderArcFrag:    {Name: "arc_frag", Stage: StageFragment, Source: Source{Text: arcFragmentSource}},
		ShaderV3Vert:     {Name: "v3_vert", Stage: StageVertex, Source: Source{Text: v3VertexSource}},
		ShaderV3Frag:     {Name: "v3_frag", Stage: StageFragment, Source: Source{Text: v3FragmentSource}},
	},
	Links: []LinkEdge{
		{ProgramLine, ShaderLineVert},
		{ProgramLine, ShaderLineFrag},
		{ProgramCircle, ShaderCircleVert},
		{ProgramCircle, ShaderCircleFrag},
		{ProgramArc, ShaderArcVert},
		{ProgramArc, ShaderArcFrag},
		{ProgramV3, ShaderV3Vert},
		{ProgramV3, ShaderV3Frag},
	},
	Uniforms: []UniformDescriptor{
		UniformLineScreenTransform:   {ProgramLine, TypeMat4, "screenTransform"},
		UniformCircleScreenTransform: {ProgramCircle, TypeMat4, "screenTransform"},
		UniformArcScreenTransform:    {ProgramArc, TypeMat4, "screenTransform"},
		UniformV3ScreenTransform:     {ProgramV3, TypeMat4, "screenTransform"},
		UniformV3Test:                {ProgramV3, TypeMat4, "test"},
	},
	Attributes: []AttributeDescriptor{
		AttributeLinePosition:      {ProgramLine, TypeVec2, "position"},
		AttributeLineNormal:        {ProgramLine, TypeVec2, "normal"},
		AttributeLineColor:         {ProgramLine, TypeVec3, "color"},
		AttributeCircleCenterPoint: {ProgramCircle, TypeVec2, "centerPoint"},
		AttributeCircleDiff:        {ProgramCircle, TypeVec2, "diff"},
		AttributeCircleColor:       {ProgramCircle, TypeVec3, "color"},
		AttributeCircleRadius:      {ProgramCircle, TypeFloat, "radius"},
		AttributeArcStartPoint:     {ProgramArc, TypeVec2, "startPoint"},
		AttributeArcCenterPoint:    {ProgramArc, TypeVec2, "centerPoint"},
		AttributeArcPosition:       {ProgramArc, TypeVec2, "position"},
		AttributeArcColor:          {ProgramArc, TypeVec3, "color"},
		AttributeArcDiffAngle:      {ProgramArc, TypeFloat, "diffAngle"},
		AttributeArcRadius:         {ProgramArc, TypeFloat, "radius"},
		AttributeV3Position:        {ProgramV3, TypeVec3, "position"},
		AttributeV3Normal:          {ProgramV3, TypeVec3, "normal"},
		AttributeV3Color:           {ProgramV3, TypeVec3, "color"},
	},
}
