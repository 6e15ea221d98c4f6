package generator

import (
	"fmt"
	"math/rand"
)

// 位置代码
const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DF"
	PositionMidfielder = "MF"
	PositionForward    = "FW"
)

// formation 4-4-2 固定阵型，第 i 名球员的位置固定
var formation = []string{
	PositionGoalkeeper,
	PositionDefender, PositionDefender, PositionDefender, PositionDefender,
	PositionMidfielder, PositionMidfielder, PositionMidfielder, PositionMidfielder,
	PositionForward, PositionForward,
}

var firstNames = []string{
	"James", "Luca", "Mateo", "Noah", "Oliver", "Hugo", "Leon", "Kai", "Rafael", "Tomas",
	"Jonas", "Milan", "Ivan", "Yusuf", "Dario", "Felix", "Owen", "Samir", "Theo", "Marco",
}

var lastNames = []string{
	"Silva", "Moreau", "Kowalski", "Novak", "Fischer", "Okafor", "Rossi", "Hughes", "Jansen", "Costa",
	"Petrov", "Lindqvist", "Duarte", "Byrne", "Alvarez", "Kim", "Haddad", "Mensah", "Varga", "Walsh",
}

// PositionFor 第 i 名球员的位置，超过 11 人时循环阵型
func PositionFor(i int) string {
	if i < 0 {
		i = -i
	}
	return formation[i%len(formation)]
}

// Generator 随机生成球员姓名/年龄与占位教练
type Generator struct {
	rng    *rand.Rand
	minAge int
	maxAge int
}

// New 创建生成器；seed 相同则生成序列相同
func New(seed int64, minAge, maxAge int) *Generator {
	if minAge <= 0 {
		minAge = 18
	}
	if maxAge < minAge {
		maxAge = minAge
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		minAge: minAge,
		maxAge: maxAge,
	}
}

// PersonName 随机 "名 姓"
func (g *Generator) PersonName() string {
	return fmt.Sprintf("%s %s", firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))])
}

// Age 闭区间 [minAge, maxAge] 内的随机年龄
func (g *Generator) Age() int {
	return g.minAge + g.rng.Intn(g.maxAge-g.minAge+1)
}

// PlaceholderCoachName 非用户球队的占位教练姓名
func (g *Generator) PlaceholderCoachName() string {
	return "Coach " + lastNames[g.rng.Intn(len(lastNames))]
}
