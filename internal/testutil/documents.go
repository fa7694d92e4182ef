package testutil

// ScenarioDocument declares a container whose focus-target refers forward to
// the label declared inside it.
const ScenarioDocument = `<interface id="root">
  <object id="box" class="Container">
    <property name="focus-target" ref="lbl"/>
    <child>
      <object id="lbl" class="Label">
        <property name="text">Hello</property>
      </object>
    </child>
  </object>
</interface>
`

// DanglingDocument is ScenarioDocument without the label id.
const DanglingDocument = `<interface id="root">
  <object id="box" class="Container">
    <property name="focus-target" ref="lbl"/>
    <child>
      <object class="Label">
        <property name="text">Hello</property>
      </object>
    </child>
  </object>
</interface>
`

// PanelDocument exercises layouts, constraints and references between siblings.
const PanelDocument = `<interface id="panel">
  <object id="panel-box" class="Container">
    <property name="name">panel</property>
    <property name="focus-target" ref="clock"/>
    <layout>
      <object class="BoxLayout">
        <property name="orientation">horizontal</property>
        <property name="spacing">6</property>
      </object>
    </layout>
    <child>
      <object id="menu" class="Button">
        <property name="label" translatable="yes">Activities</property>
        <property name="label-actor" ref="menu-label"/>
        <child>
          <object id="menu-label" class="Label">
            <property name="text" translatable="yes">Activities</property>
          </object>
        </child>
      </object>
    </child>
    <child>
      <object id="clock" class="Label">
        <property name="text">12:00</property>
        <constraint>
          <object class="AlignConstraint">
            <property name="source" ref="panel-box"/>
            <property name="align-axis">x</property>
            <property name="factor">0.5</property>
          </object>
        </constraint>
      </object>
    </child>
    <child>
      <object class="Icon">
        <property name="icon-name">system-shutdown</property>
        <constraint>
          <object class="SnapConstraint">
            <property name="source" ref="clock"/>
            <property name="from-edge">left</property>
            <property name="to-edge">right</property>
          </object>
        </constraint>
      </object>
    </child>
  </object>
</interface>
`
