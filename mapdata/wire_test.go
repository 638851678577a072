package mapdata

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireRecordSizes(t *testing.T) {
	require := require.New(t)

	require.Equal(DoomThingLength, binary.Size(binDoomThing{}))
	require.Equal(StrifeThingLength, binary.Size(binDoomThing{}))
	require.Equal(HexenThingLength, binary.Size(binHexenThing{}))
	require.Equal(DoomLinedefLength, binary.Size(binDoomLinedef{}))
	require.Equal(StrifeLinedefLength, binary.Size(binDoomLinedef{}))
	require.Equal(HexenLinedefLength, binary.Size(binHexenLinedef{}))
	require.Equal(SidedefLength, binary.Size(binSidedef{}))
	require.Equal(SectorLength, binary.Size(binSector{}))
	require.Equal(VertexLength, binary.Size(binVertex{}))
}
