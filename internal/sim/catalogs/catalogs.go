// Package catalogs holds the immutable block definitions the simulation is
// built against. A Catalogs value is constructed once at startup from the
// config directory and then only read; nothing mutates it afterwards.
package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"gocraft/internal/sim/geom"
)

// BlockID identifies a block kind. It is derived from the block name, so the
// same catalog file always yields the same ids. Zero means "no block" and is
// never a valid id.
type BlockID uint32

type BlockDef struct {
	Name      string
	ID        BlockID
	BreakTime float32
	// Textures holds one layer index per geom.Normal into the catalog's
	// block texture set.
	Textures [6]int
}

type BlockCatalog struct {
	Defs   map[BlockID]*BlockDef
	Index  map[string]BlockID
	Names  []string // internal names, sorted
	Digest string

	// Textures is sealed during Load; every block face resolves to a layer
	// in this set.
	Textures *TextureSet
}

type Catalogs struct {
	Blocks BlockCatalog
}

// DeriveID maps a block name to its stable id: the first four bytes of
// sha256 over the internal (lowercased, underscored) name.
func DeriveID(name string) BlockID {
	sum := sha256.Sum256([]byte(internalName(name)))
	return BlockID(uint32(sum[0])<<24 | uint32(sum[1])<<16 | uint32(sum[2])<<8 | uint32(sum[3]))
}

func internalName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

type blockFile struct {
	Blocks []blockEntry `json:"blocks"`
}

type blockEntry struct {
	Name      string            `json:"name"`
	BreakTime float32           `json:"break_time"`
	Textures  map[string]string `json:"textures,omitempty"`
}

// Load reads and validates blocks.json from configDir and builds the block
// catalog. The file is checked against blocks.schema.json in the same
// directory before anything is decoded.
func Load(configDir string) (*Catalogs, error) {
	var c Catalogs
	if err := loadBlocks(filepath.Join(configDir, "blocks.json"), filepath.Join(configDir, "blocks.schema.json"), &c.Blocks); err != nil {
		return nil, err
	}
	return &c, nil
}

func loadBlocks(path, schemaPath string, out *BlockCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	schema, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("blocks schema: %w", err)
	}
	var anyDoc any
	if err := json.Unmarshal(raw, &anyDoc); err != nil {
		return fmt.Errorf("blocks.json: %w", err)
	}
	if err := schema.Validate(anyDoc); err != nil {
		return fmt.Errorf("blocks.json: %w", err)
	}

	var file blockFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("blocks.json: %w", err)
	}

	out.Defs = make(map[BlockID]*BlockDef, len(file.Blocks))
	out.Index = make(map[string]BlockID, len(file.Blocks))
	out.Textures = NewTextureSet()

	for _, entry := range file.Blocks {
		name := internalName(entry.Name)
		id := DeriveID(entry.Name)
		if id == 0 {
			return fmt.Errorf("block %q: derived id is the reserved zero value", entry.Name)
		}
		if prev, ok := out.Defs[id]; ok {
			return fmt.Errorf("block %q: id collision with %q", entry.Name, prev.Name)
		}
		if _, ok := out.Index[name]; ok {
			return fmt.Errorf("block %q: duplicate name", entry.Name)
		}

		def := &BlockDef{
			Name:      name,
			ID:        id,
			BreakTime: entry.BreakTime,
		}
		for _, n := range geom.Normals {
			tex := name
			if t, ok := entry.Textures[n.String()]; ok {
				tex = t
			}
			layer, err := out.Textures.Add(tex)
			if err != nil {
				return fmt.Errorf("block %q: %w", entry.Name, err)
			}
			def.Textures[n] = layer
		}

		out.Defs[id] = def
		out.Index[name] = id
		out.Names = append(out.Names, name)
	}
	sort.Strings(out.Names)
	out.Textures.Seal()

	digest, err := digestDefs(out)
	if err != nil {
		return err
	}
	out.Digest = digest
	return nil
}

func digestDefs(c *BlockCatalog) (string, error) {
	type digestEntry struct {
		Name      string  `json:"name"`
		ID        BlockID `json:"id"`
		BreakTime float32 `json:"break_time"`
		Textures  [6]int  `json:"textures"`
	}
	entries := make([]digestEntry, 0, len(c.Names))
	for _, name := range c.Names {
		def := c.Defs[c.Index[name]]
		entries = append(entries, digestEntry{
			Name:      def.Name,
			ID:        def.ID,
			BreakTime: def.BreakTime,
			Textures:  def.Textures,
		})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return sha256Hex(b), nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Def returns the definition for id, or nil for the empty id or an id the
// catalog does not know.
func (c *BlockCatalog) Def(id BlockID) *BlockDef {
	if id == 0 {
		return nil
	}
	return c.Defs[id]
}

// ByName resolves an internal block name to its id. Returns 0, false for
// unknown names.
func (c *BlockCatalog) ByName(name string) (BlockID, bool) {
	id, ok := c.Index[internalName(name)]
	return id, ok
}
