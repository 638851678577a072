package udmf

// Group names.
const (
	GroupThing   = "thing"
	GroupVertex  = "vertex"
	GroupLinedef = "linedef"
	GroupSidedef = "sidedef"
	GroupSector  = "sector"
)

// Global attributes.
const (
	AttrNamespace = "namespace"
)

// Namespaces.
const (
	NamespaceDoom       = "doom"
	NamespaceHeretic    = "heretic"
	NamespaceHexen      = "hexen"
	NamespaceStrife     = "strife"
	NamespaceZDoom      = "zdoom"
	NamespaceZDoomTrans = "zdoomtranslated"
)

// Attributes shared by most record types.
const (
	AttrID      = "id"
	AttrSpecial = "special"
	AttrArg0    = "arg0"
	AttrArg1    = "arg1"
	AttrArg2    = "arg2"
	AttrArg3    = "arg3"
	AttrArg4    = "arg4"
	AttrComment = "comment"
)

// Vertex attributes.
const (
	AttrVertexX = "x"
	AttrVertexY = "y"
)

// Linedef attributes common to every namespace.
const (
	AttrLinedefVertexStart   = "v1"
	AttrLinedefVertexEnd     = "v2"
	AttrLinedefSidedefFront  = "sidefront"
	AttrLinedefSidedefBack   = "sideback"
	AttrLinedefBlocking      = "blocking"
	AttrLinedefBlockMonsters = "blockmonsters"
	AttrLinedefTwoSided      = "twosided"
	AttrLinedefUnpegTop      = "dontpegtop"
	AttrLinedefUnpegBottom   = "dontpegbottom"
	AttrLinedefSecret        = "secret"
	AttrLinedefBlockSound    = "blocksound"
	AttrLinedefDontDraw      = "dontdraw"
	AttrLinedefMapped        = "mapped"
)

// Linedef attributes of the Doom and Hexen namespaces.
const (
	AttrLinedefPassUse       = "passuse"
	AttrLinedefRepeatSpecial = "repeatspecial"
	AttrLinedefPlayerCross   = "playercross"
	AttrLinedefPlayerUse     = "playeruse"
	AttrLinedefMonsterCross  = "monstercross"
	AttrLinedefMonsterUse    = "monsteruse"
	AttrLinedefImpact        = "impact"
	AttrLinedefPlayerPush    = "playerpush"
	AttrLinedefMonsterPush   = "monsterpush"
	AttrLinedefMissileCross  = "missilecross"
)

// Linedef attributes of the Strife namespace.
const (
	AttrLinedefTranslucent   = "translucent"
	AttrLinedefJumpOver      = "jumpover"
	AttrLinedefBlockFloaters = "blockfloaters"
)

// Sidedef attributes.
const (
	AttrSidedefOffsetX       = "offsetx"
	AttrSidedefOffsetY       = "offsety"
	AttrSidedefTextureTop    = "texturetop"
	AttrSidedefTextureBottom = "texturebottom"
	AttrSidedefTextureMiddle = "texturemiddle"
	AttrSidedefSector        = "sector"
)

// Sector attributes.
const (
	AttrSectorHeightFloor    = "heightfloor"
	AttrSectorHeightCeiling  = "heightceiling"
	AttrSectorTextureFloor   = "texturefloor"
	AttrSectorTextureCeiling = "textureceiling"
	AttrSectorLightLevel     = "lightlevel"
)

// Thing attributes.
const (
	AttrThingX           = "x"
	AttrThingY           = "y"
	AttrThingHeight      = "height"
	AttrThingAngle       = "angle"
	AttrThingType        = "type"
	AttrThingSkill1      = "skill1"
	AttrThingSkill2      = "skill2"
	AttrThingSkill3      = "skill3"
	AttrThingSkill4      = "skill4"
	AttrThingSkill5      = "skill5"
	AttrThingAmbush      = "ambush"
	AttrThingSingle      = "single"
	AttrThingDeathmatch  = "dm"
	AttrThingCoop        = "coop"
	AttrThingFriend      = "friend"
	AttrThingDormant     = "dormant"
	AttrThingClass1      = "class1"
	AttrThingClass2      = "class2"
	AttrThingClass3      = "class3"
	AttrThingStanding    = "standing"
	AttrThingStrifeAlly  = "strifeally"
	AttrThingTranslucent = "translucent"
	AttrThingInvisible   = "invisible"
)
